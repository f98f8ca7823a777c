package coursemarket

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/auth"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/catalog"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/course"
)

func runSignup(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "signup")
	var in auth.SignupInput
	fs.StringVar(&in.Username, "username", "", "display name")
	fs.StringVar(&in.Email, "email", "", "account email")
	fs.StringVar(&in.Password, "password", "", "account password")
	fs.BoolVar(&in.AsInstructor, "instructor", false, "create an instructor account")
	if err := fs.Parse(args); err != nil {
		return err
	}
	session, err := a.credentials.Signup(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed up as %s (%s)\n", session.Username, roleName(session))
	return nil
}

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	asInstructor := fs.Bool("instructor", false, "log in as an instructor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	session, err := a.credentials.Login(ctx, *email, *password, *asInstructor)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", session.Username, roleName(session))
	return nil
}

func runLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.credentials.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func runWhoami(ctx context.Context, a *app, _ []string) error {
	session, ok, err := a.credentials.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> %s id=%s\n", session.Username, session.Email, roleName(session), session.ID)
	return nil
}

func runCourses(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "courses")
	publishedOnly := fs.Bool("published", false, "only list published courses")
	if err := fs.Parse(args); err != nil {
		return err
	}
	list := a.courses.List
	if *publishedOnly {
		list = a.courses.ListPublished
	}
	courses, err := list(ctx)
	if err != nil {
		return err
	}
	printCourses(a.out, courses)
	return nil
}

func runMine(ctx context.Context, a *app, _ []string) error {
	session, err := a.requireInstructor(ctx)
	if err != nil {
		return err
	}
	courses, err := a.courses.ListByAuthor(ctx, session.ID)
	if err != nil {
		return err
	}
	summary := catalog.Summarize(courses)
	fmt.Fprintf(a.out, "Total courses: %d\nPublished: %d\nTotal revenue: %s\n\n",
		summary.Total, summary.Published, catalog.FormatPrice(summary.Revenue))
	if len(courses) == 0 {
		fmt.Fprintln(a.out, "No courses yet. Create your first course.")
		return nil
	}
	printCourses(a.out, courses)
	return nil
}

func runAdd(ctx context.Context, a *app, args []string) error {
	session, err := a.requireInstructor(ctx)
	if err != nil {
		return err
	}
	fs := newFlagSet(a, "add")
	c := course.Course{Level: course.LevelBeginner}
	draft := fs.Bool("draft", false, "create the course unpublished")
	fs.StringVar(&c.Title, "title", "", "course title")
	fs.StringVar(&c.Description, "description", "", "course description")
	fs.Float64Var(&c.Price, "price", 0, "price in USD")
	fs.StringVar(&c.Image, "image", "", "image URL (default: a stock image)")
	fs.StringVar(&c.Category, "category", "", "category: "+strings.Join(course.Categories(), ", "))
	fs.StringVar(&c.Duration, "duration", "", "duration, for example \"8 hours\"")
	fs.StringVar(&c.Level, "level", c.Level, "level: "+strings.Join(course.Levels(), ", "))
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.AuthorID = session.ID
	c.AuthorName = session.Username
	c.Published = !*draft

	created, err := a.courses.Add(ctx, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created course %s: %s\n", created.ID, created.Title)
	return nil
}

func runUpdate(ctx context.Context, a *app, args []string) error {
	session, err := a.requireInstructor(ctx)
	if err != nil {
		return err
	}
	fs := newFlagSet(a, "update")
	title := fs.String("title", "", "course title")
	description := fs.String("description", "", "course description")
	price := fs.Float64("price", 0, "price in USD")
	image := fs.String("image", "", "image URL")
	category := fs.String("category", "", "category")
	duration := fs.String("duration", "", "duration")
	level := fs.String("level", "", "level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	courseID, err := courseIDArg(fs)
	if err != nil {
		return err
	}
	if _, err := a.ownedCourse(ctx, session, courseID); err != nil {
		return err
	}

	var u course.Update
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			u.Title = title
		case "description":
			u.Description = description
		case "price":
			u.Price = price
		case "image":
			u.Image = image
		case "category":
			u.Category = category
		case "duration":
			u.Duration = duration
		case "level":
			u.Level = level
		}
	})
	if u.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}
	if err := a.courses.Update(ctx, courseID, u); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated course %s\n", courseID)
	return nil
}

func runDelete(ctx context.Context, a *app, args []string) error {
	session, err := a.requireInstructor(ctx)
	if err != nil {
		return err
	}
	fs := newFlagSet(a, "delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	courseID, err := courseIDArg(fs)
	if err != nil {
		return err
	}
	if _, err := a.ownedCourse(ctx, session, courseID); err != nil {
		return err
	}
	if err := a.courses.Delete(ctx, courseID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted course %s\n", courseID)
	return nil
}

func runPublish(published bool) func(context.Context, *app, []string) error {
	return func(ctx context.Context, a *app, args []string) error {
		session, err := a.requireInstructor(ctx)
		if err != nil {
			return err
		}
		fs := newFlagSet(a, "publish")
		if err := fs.Parse(args); err != nil {
			return err
		}
		courseID, err := courseIDArg(fs)
		if err != nil {
			return err
		}
		if _, err := a.ownedCourse(ctx, session, courseID); err != nil {
			return err
		}
		if err := a.courses.Update(ctx, courseID, course.Update{Published: &published}); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Course %s is now %s\n", courseID, strings.ToLower(catalog.StatusLabel(course.Course{Published: published})))
		return nil
	}
}

func runSearch(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "search")
	var q catalog.Query
	fs.StringVar(&q.Search, "q", "", "text to find in title or description")
	fs.StringVar(&q.Category, "category", catalog.All, "category filter")
	fs.StringVar(&q.Level, "level", catalog.All, "level filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	published, err := a.courses.ListPublished(ctx)
	if err != nil {
		return err
	}
	found := catalog.Filter(published, q)
	fmt.Fprintf(a.out, "Showing %d of %d courses\n", len(found), len(published))
	if len(found) == 0 {
		fmt.Fprintln(a.out, "No courses found. Try adjusting your search or filter criteria.")
		return nil
	}
	printCourses(a.out, found)
	return nil
}

func runFilters(ctx context.Context, a *app, _ []string) error {
	published, err := a.courses.ListPublished(ctx)
	if err != nil {
		return err
	}
	categories, levels := catalog.Options(published)
	fmt.Fprintf(a.out, "Categories: %s\n", strings.Join(categories, ", "))
	fmt.Fprintf(a.out, "Levels: %s\n", strings.Join(levels, ", "))
	return nil
}

func runEnroll(_ context.Context, a *app, _ []string) error {
	fmt.Fprintln(a.out, catalog.EnrollmentNotice)
	return nil
}

func roleName(session auth.Session) string {
	if session.IsAdmin {
		return "instructor"
	}
	return "student"
}

func printCourses(w io.Writer, courses []course.Course) {
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\tby %s\n",
			c.ID, c.Title, catalog.FormatPrice(c.Price), c.Category, c.Level,
			c.Duration, catalog.StatusLabel(c), c.AuthorName)
	}
}
