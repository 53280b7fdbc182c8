package iocli

//go:generate moq -out io_mock.go . IO

// IO is the terminal the cli talks to
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	Write(p []byte) (n int, err error)
	// Width returns the number of columns available for output
	Width() int
}
