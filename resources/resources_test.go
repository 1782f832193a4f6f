package resources_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/axial/resources"
	"github.com/jetsetilly/axial/test"
)

func TestJoinPath(t *testing.T) {
	t.Cleanup(func() { os.RemoveAll(".axial") })

	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".axial/foo/bar/baz")

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".axial/foo/bar/baz")

	pth, err = resources.JoinPath("foo/bar", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".axial/foo/bar")

	pth, err = resources.JoinPath("", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".axial/baz")

	pth, err = resources.JoinPath("", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".axial")
}

func TestReadWrite(t *testing.T) {
	t.Cleanup(func() { os.RemoveAll(".axial") })

	s, err := resources.Read("test_read_write")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, s, "")

	err = resources.Write("test_read_write", "hello world")
	test.ExpectEquality(t, err, nil)

	s, err = resources.Read("test_read_write")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, s, "hello world")
}
