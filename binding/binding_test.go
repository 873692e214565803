// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package binding

import (
	"context"
	"testing"

	"github.com/yourbase/confx/textfile"
)

func TestSetPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"app", "app.env"},
		{"app.env", "app.env"},
		{"dir/app.env", "dir/app.env"},
		{"app.ini", "app.ini.env"},
		{"", ".env"},
	}
	for _, test := range tests {
		if got := New(".env", test.path).Path(); got != test.want {
			t.Errorf("New(\".env\", %q).Path() = %q; want %q", test.path, got, test.want)
		}
	}
}

func TestSetCapacity(t *testing.T) {
	b := New(".ini", "app")
	if got := b.Capacity(); got != DefaultCapacity {
		t.Errorf("default Capacity() = %d; want %d", got, DefaultCapacity)
	}
	tests := []struct {
		n    int
		want int
	}{
		{4096, 4096},
		{1, 1},
		{0, DefaultCapacity},
		{-5, DefaultCapacity},
	}
	for _, test := range tests {
		if got := b.SetCapacity(test.n).Capacity(); got != test.want {
			t.Errorf("SetCapacity(%d).Capacity() = %d; want %d", test.n, got, test.want)
		}
	}
}

func TestCommentDelimiter(t *testing.T) {
	b := New(".env", "app")
	if got := b.CommentDelimiter(); got != "#" {
		t.Errorf("default CommentDelimiter() = %q; want \"#\"", got)
	}
	if got := b.SetCommentDelimiter(";").CommentDelimiter(); got != ";" {
		t.Errorf("CommentDelimiter() = %q; want \";\"", got)
	}
	if got := b.SetCommentDelimiter("").CommentDelimiter(); got != "" {
		t.Errorf("CommentDelimiter() = %q; want \"\"", got)
	}
}

func TestSetFS(t *testing.T) {
	b := New(".env", "app")
	if _, ok := b.FS().(textfile.OS); !ok {
		t.Errorf("default FS() = %T; want textfile.OS", b.FS())
	}
	if _, ok := b.SetFS(nil).FS().(textfile.OS); !ok {
		t.Errorf("SetFS(nil).FS() = %T; want textfile.OS", b.FS())
	}
}

func TestRead(t *testing.T) {
	ctx := context.Background()
	fsys := textfile.Map{"app.env": []byte("A=1\n")}

	data, ok, err := New(".env", "app").SetFS(fsys).Read(ctx)
	if err != nil || !ok || string(data) != "A=1\n" {
		t.Errorf("Read() = %q, %t, %v; want \"A=1\\n\", true, <nil>", data, ok, err)
	}

	data, ok, err = New(".env", "missing").SetFS(fsys).Read(ctx)
	if err != nil || ok || data != nil {
		t.Errorf("Read() on missing file = %q, %t, %v; want nil, false, <nil>", data, ok, err)
	}
}

func TestWrite(t *testing.T) {
	ctx := context.Background()
	marshal := func(buf []byte) []byte {
		if cap(buf) != 16 {
			t.Errorf("marshal buffer capacity = %d; want 16", cap(buf))
		}
		return append(buf, "A=1\n"...)
	}

	t.Run("MissingNoCreate", func(t *testing.T) {
		fsys := make(textfile.Map)
		ok, err := New(".env", "app").SetFS(fsys).SetCapacity(16).Write(ctx, false, marshal)
		if err != nil || ok {
			t.Errorf("Write(ctx, false, ...) = %t, %v; want false, <nil>", ok, err)
		}
		if len(fsys) != 0 {
			t.Errorf("files after refused write = %q; want none", fsys.Paths())
		}
	})
	t.Run("MissingCreate", func(t *testing.T) {
		fsys := make(textfile.Map)
		ok, err := New(".ini", "app").SetFS(fsys).SetCapacity(16).Write(ctx, true, marshal)
		if err != nil || !ok {
			t.Errorf("Write(ctx, true, ...) = %t, %v; want true, <nil>", ok, err)
		}
		if got := string(fsys["app.ini"]); got != "A=1\n" {
			t.Errorf("app.ini = %q; want \"A=1\\n\"", got)
		}
	})
	t.Run("Existing", func(t *testing.T) {
		fsys := textfile.Map{"app.env": []byte("OLD=1\n")}
		ok, err := New(".env", "app").SetFS(fsys).SetCapacity(16).Write(ctx, false, marshal)
		if err != nil || !ok {
			t.Errorf("Write(ctx, false, ...) = %t, %v; want true, <nil>", ok, err)
		}
		if got := string(fsys["app.env"]); got != "A=1\n" {
			t.Errorf("app.env = %q; want \"A=1\\n\"", got)
		}
	})
}
