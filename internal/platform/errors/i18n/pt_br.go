package i18n

var ptBRMessages = map[Code]string{
	CodeUnknown:            "Ocorreu um erro. Tente novamente.",
	CodeInvalidCredentials: "Credenciais inválidas",
	CodeAlreadyExists:      "Usuário já existe",
	CodePermissionDenied:   "Apenas instrutores podem gerenciar cursos",
	CodeInvalidArgument:    "Valor inválido para {{.Field}}",
	CodeNotFound:           "Registro não encontrado",
	CodeStorageCorrupt:     "Os dados armazenados em {{.Key}} estão ilegíveis",
}
