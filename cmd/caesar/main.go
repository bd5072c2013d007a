package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"caesar/internal/caesar"
	"caesar/internal/rec"
)

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func run(in io.Reader, out io.Writer) (err error) {
	defer rec.Error(&err)

	r := bufio.NewReader(in)

	fmt.Fprint(out, "Enter the message you want to encrypt: ")
	message, err := readLine(r)
	if err != nil {
		return fmt.Errorf("read message: %w", err)
	}

	fmt.Fprint(out, "Enter the key value: ")
	token, err := readLine(r)
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}

	key, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return fmt.Errorf("invalid key %q: must be an integer", token)
	}

	fmt.Fprintf(out, "Encrypted message: %s\n", caesar.Encrypt(message, key))
	return nil
}

func main() {
	err := run(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "caesar:", err)
		os.Exit(1)
	}
}
