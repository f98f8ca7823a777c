// Package coursemarket implements the coursemarket command: account
// sessions, instructor course management and catalog browsing over the
// marketplace stores.
package coursemarket

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	apperrors "github.com/omkumar23112003/course-selling-app/internal/platform/errors"
	"github.com/omkumar23112003/course-selling-app/internal/platform/requestctx"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/auth"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/course"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage/memory"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage/sqlite"
)

// app bundles the stores one command runs against.
type app struct {
	credentials *auth.CredentialStore
	courses     *course.Store
	out         io.Writer
	errOut      io.Writer
}

type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"signup":    {usage: "create an account and log in", run: runSignup},
	"login":     {usage: "log in as a student or instructor", run: runLogin},
	"logout":    {usage: "end the current session", run: runLogout},
	"whoami":    {usage: "show the current session", run: runWhoami},
	"courses":   {usage: "list courses", run: runCourses},
	"mine":      {usage: "list your courses with totals (instructor)", run: runMine},
	"add":       {usage: "create a course (instructor)", run: runAdd},
	"update":    {usage: "edit a course (instructor)", run: runUpdate},
	"delete":    {usage: "remove a course (instructor)", run: runDelete},
	"publish":   {usage: "make a course visible (instructor)", run: runPublish(true)},
	"unpublish": {usage: "hide a course as a draft (instructor)", run: runPublish(false)},
	"search":    {usage: "search published courses", run: runSearch},
	"filters":   {usage: "list search filter choices", run: runFilters},
	"enroll":    {usage: "enroll in a course", run: runEnroll},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Usage writes the command list to w.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: coursemarket [flags] <command> [command flags]")
	fmt.Fprintln(w, "\nCommands:")
	for _, name := range commandNames() {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].usage)
	}
}

// Run executes one coursemarket command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	cmd, ok := commands[cfg.Command]
	if !ok {
		Usage(errOut)
		return fmt.Errorf("unknown command %q", cfg.Command)
	}

	kv, closeStore, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	credentials, err := auth.NewCredentialStore(ctx, kv)
	if err != nil {
		return err
	}
	if session, ok := credentials.Sessions().Current(); ok {
		ctx = requestctx.WithActor(ctx, requestctx.Actor{ID: session.ID, Instructor: session.IsAdmin})
	}
	courses, err := course.Open(ctx, kv)
	if err != nil {
		return err
	}
	a := &app{credentials: credentials, courses: courses, out: out, errOut: errOut}
	return cmd.run(ctx, a, cfg.Args)
}

// Describe renders err for the terminal. Domain errors use the localized
// catalog message; anything else is printed as is.
func Describe(err error, locale string) string {
	if apperrors.CodeOf(err) == apperrors.CodeUnknown {
		return err.Error()
	}
	return apperrors.UserMessage(err, locale)
}

// ExitCode maps err onto the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return apperrors.CodeOf(err).ExitCode()
}

func openStorage(cfg Config) (storage.KeyValueStore, func() error, error) {
	switch cfg.Storage {
	case StorageMemory:
		return memory.New(), func() error { return nil }, nil
	case StorageSQLite, "":
		if dir := filepath.Dir(cfg.DBPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create storage dir: %w", err)
			}
		}
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func newFlagSet(a *app, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// requireInstructor returns the current session when it belongs to an
// instructor.
func (a *app) requireInstructor(ctx context.Context) (auth.Session, error) {
	session, ok, err := a.credentials.CurrentSession(ctx)
	if err != nil {
		return auth.Session{}, err
	}
	if !ok || !session.IsAdmin {
		return auth.Session{}, apperrors.New(apperrors.CodePermissionDenied, "instructor session required")
	}
	return session, nil
}

// ownedCourse loads courseID and checks that session authored it.
func (a *app) ownedCourse(ctx context.Context, session auth.Session, courseID string) (course.Course, error) {
	c, found, err := a.courses.Get(ctx, courseID)
	if err != nil {
		return course.Course{}, err
	}
	if !found {
		return course.Course{}, apperrors.WithMetadata(apperrors.CodeNotFound, "course not found", map[string]string{"ID": courseID})
	}
	if c.AuthorID != session.ID {
		return course.Course{}, apperrors.New(apperrors.CodePermissionDenied, "course belongs to another instructor")
	}
	return c, nil
}

func courseIDArg(fs *flag.FlagSet) (string, error) {
	courseID := strings.TrimSpace(fs.Arg(0))
	if courseID == "" {
		return "", errors.New("course id is required")
	}
	return courseID, nil
}
