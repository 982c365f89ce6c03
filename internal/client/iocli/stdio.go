package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio is the IO implementation bound to the process terminal.
type Stdio struct {
	in *bufio.Reader
}

func NewStdio() IO {
	// Один reader на весь жизненный цикл: новый bufio.Reader на каждый
	// вызов терял бы уже забуференный хвост ввода
	return &Stdio{in: bufio.NewReader(os.Stdin)}
}

func (s *Stdio) Println(a ...any) {
	fmt.Println(a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

// ReadInput печатает приглашение и читает строку до перевода строки
func (s *Stdio) ReadInput(prompt string) (string, error) {
	fmt.Print(prompt)
	input, err := s.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает пароль с выключенным эхом терминала
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	// Эхо выключено, Enter пользователя не напечатался
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
