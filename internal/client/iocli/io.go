package iocli

//go:generate moq -out io_mock.go . IO

// IO абстрагирует терминал: команды печатают и читают через него,
// тесты подставляют mock
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
