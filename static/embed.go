package staticfiles

import (
	"embed"
	"io/fs"
)

//go:embed index.html css/* js/*
var embedded embed.FS

func EmbeddedFS() fs.FS {
	return embedded
}

// Sub returns the embedded subtree rooted at dir.
func Sub(dir string) fs.FS {
	sub, err := fs.Sub(embedded, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Index returns the frontend entry document.
func Index() []byte {
	b, err := embedded.ReadFile("index.html")
	if err != nil {
		panic(err)
	}
	return b
}
