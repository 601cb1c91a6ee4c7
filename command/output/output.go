package output

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"
)

type Result struct {
	FirstLength  int    `json:"first_length"`
	SecondLength int    `json:"second_length"`
	Match        string `json:"match"`
	Length       int    `json:"length"`
}

func NewResult(first, second, match string) Result {
	return Result{
		FirstLength:  utf8.RuneCountInString(first),
		SecondLength: utf8.RuneCountInString(second),
		Match:        match,
		Length:       utf8.RuneCountInString(match),
	}
}

type Writer interface {
	Write(r Result) error
}

func NewWriter(w io.Writer, asJSON bool) Writer {
	if asJSON {
		return &jsonWriter{enc: json.NewEncoder(w)}
	}
	return &textWriter{w: w}
}

type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(r Result) error {
	return j.enc.Encode(r)
}

type textWriter struct {
	w io.Writer
}

func (t *textWriter) Write(r Result) error {
	_, err := fmt.Fprintf(t.w, "%d\t%s\n", r.Length, r.Match)
	return err
}
