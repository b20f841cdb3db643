package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPath(t *testing.T) {
	t.Run("canonicalizes case and separators", func(t *testing.T) {
		p := NewPath("Streambind.Bindings.input-1.Binding_Retry_Interval")

		assert.Equal(t, "streambind.bindings.input1.bindingretryinterval", p.String())
		assert.Equal(t, 4, p.NumElements())
	})

	t.Run("drops empty segments", func(t *testing.T) {
		assert.True(t, NewPath("a..b").Equal(NewPath("a.b")))
	})

	t.Run("empty name yields empty path", func(t *testing.T) {
		assert.True(t, NewPath("").IsEmpty())
	})
}

func TestPathOf(t *testing.T) {
	p := PathOf("a", "b", "C")
	assert.Equal(t, "a.b.c", p.String())
}

func TestAppend(t *testing.T) {
	t.Run("canonicalizes the appended element", func(t *testing.T) {
		p := NewPath("a.b").Append("Max_Attempts")
		assert.Equal(t, "a.b.maxattempts", p.String())
	})

	t.Run("splits dotted elements", func(t *testing.T) {
		p := NewPath("a").Append("b.c")
		assert.Equal(t, 3, p.NumElements())
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		p := NewPath("a.b")
		_ = p.Append("c")
		assert.Equal(t, "a.b", p.String())
	})
}

func TestParent(t *testing.T) {
	assert.Equal(t, "a.b", NewPath("a.b.c").Parent().String())
	assert.True(t, NewPath("a").Parent().IsEmpty())
	assert.True(t, PropertyPath{}.Parent().IsEmpty())
}

func TestLastElement(t *testing.T) {
	assert.Equal(t, "c", NewPath("a.b.c").LastElement())
	assert.Equal(t, "", PropertyPath{}.LastElement())
}

func TestIsAncestorOf(t *testing.T) {
	root := NewPath("a.b")

	t.Run("prefix is ancestor", func(t *testing.T) {
		assert.True(t, root.IsAncestorOf(NewPath("a.b.c")))
		assert.True(t, root.IsAncestorOf(NewPath("a.b.c.d")))
	})

	t.Run("non-strict: path is ancestor of itself", func(t *testing.T) {
		assert.True(t, root.IsAncestorOf(root))
	})

	t.Run("diverging path is not ancestor", func(t *testing.T) {
		assert.False(t, root.IsAncestorOf(NewPath("a.c.d")))
	})

	t.Run("longer path is not ancestor of shorter", func(t *testing.T) {
		assert.False(t, NewPath("a.b.c").IsAncestorOf(root))
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, NewPath("a.B-c").Equal(NewPath("a.bc")))
	assert.False(t, NewPath("a.b").Equal(NewPath("a.b.c")))
}
