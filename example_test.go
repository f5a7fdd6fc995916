// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/creachadair/jstream"
)

func ExampleReader_Process() {
	r := jstream.NewReader()
	for _, chunk := range []string{`{"ok": tr`, `ue, "n": [1`, `2]}`} {
		evs, err := r.Process([]byte(chunk))
		if err != nil {
			log.Fatalf("Process: %v", err)
		}
		for _, e := range evs {
			fmt.Println(e)
		}
	}
	fmt.Println("done:", r.Done())
	// Output:
	// BeginObject
	// Key "ok"
	// Value bool <true>
	// Key "n"
	// BeginArray
	// Value number <12>
	// EndArray
	// EndObject
	// done: true
}

func ExampleStream() {
	var keys []string
	h := jstream.Funcs{
		OnKey: func(key string) error { keys = append(keys, key); return nil },
	}
	s := jstream.NewStream(strings.NewReader(`{"a": {"b": [], "c": null}, "d": 1}`))
	s.SetBufferSize(4)
	if err := s.Parse(context.Background(), h); err != nil {
		log.Fatalf("Parse: %v", err)
	}
	fmt.Println(strings.Join(keys, " "))
	// Output:
	// a b c d
}
