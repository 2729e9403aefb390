package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Envelope is the reply shape shared by every command: success plus either a
// payload or a human-readable message, matching the replies the desktop front
// end consumed.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OutputFormatter renders envelopes as JSON or text.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Success writes a success envelope with the given payload.
func (f *OutputFormatter) Success(data interface{}) error {
	return f.write(Envelope{Success: true, Data: data})
}

// Failure writes a failure envelope with the given message.
func (f *OutputFormatter) Failure(message string) error {
	return f.write(Envelope{Success: false, Message: message})
}

func (f *OutputFormatter) write(env Envelope) error {
	if f.Format == "text" {
		if env.Success {
			if env.Data != nil {
				b, err := json.MarshalIndent(env.Data, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(f.Writer, string(b))
				return err
			}
			_, err := fmt.Fprintln(f.Writer, "ok")
			return err
		}
		_, err := fmt.Fprintf(f.Writer, "error: %s\n", env.Message)
		return err
	}

	enc := json.NewEncoder(f.Writer)
	return enc.Encode(env)
}

func formatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w}
}
