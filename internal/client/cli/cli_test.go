package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/gophshop/internal/client/iocli"
	syncsvc "github.com/iudanet/gophshop/internal/client/sync"
)

// recordingIO собирает весь вывод команды в срез строк
func recordingIO(lines *[]string) *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			*lines = append(*lines, fmt.Sprint(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			*lines = append(*lines, fmt.Sprintf(format, a...))
		},
	}
}

// scriptedIO отвечает на запросы ввода по порядку
func scriptedIO(lines *[]string, inputs ...string) *iocli.IOMock {
	io := recordingIO(lines)
	io.ReadInputFunc = func(prompt string) (string, error) {
		if len(inputs) == 0 {
			return "", fmt.Errorf("unexpected input prompt: %s", prompt)
		}
		next := inputs[0]
		inputs = inputs[1:]
		return next, nil
	}
	io.ReadPasswordFunc = func(prompt string) (string, error) {
		if len(inputs) == 0 {
			return "", fmt.Errorf("unexpected password prompt: %s", prompt)
		}
		next := inputs[0]
		inputs = inputs[1:]
		return next, nil
	}
	return io
}

func outputContains(lines []string, want string) bool {
	for _, line := range lines {
		if strings.Contains(line, want) {
			return true
		}
	}
	return false
}

func idleSyncer() *syncsvc.ServiceMock {
	return &syncsvc.ServiceMock{
		DrainFunc: func(ctx context.Context) (*syncsvc.Result, error) {
			return &syncsvc.Result{}, nil
		},
	}
}
