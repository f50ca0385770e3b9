// File: path.go
// Title: Path Access into Nested Values
// Description: Reads and replaces values addressed by a path such as
//              "servers[0].name" or `labels["app.kubernetes.io"]`.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package valuex

import (
	"fmt"
	"strconv"
	"strings"

	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
)

type segment struct {
	key     string
	index   int
	isIndex bool
}

func (s segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return "." + s.key
}

// Get returns the value at path inside v. The path consists of object keys
// separated by dots and list indices in brackets; keys containing dots are
// written as quoted strings in brackets. An empty path or "$" denotes v.
func Get(v Value, path string) (Value, error) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	return walk(v, segs, "get")
}

// Set replaces the value at path inside v in place. The parent of the target
// must exist; an object key is created when missing, a list index must be in
// range. The root itself cannot be replaced.
//
// Set mutates v. Apply it to a Clone to derive a new value and leave the
// source untouched.
func Set(v Value, path string, x Value) error {
	segs, err := parsePath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleValuex, "set", path, "a path below the root")
	}

	parent, err := walk(v, segs[:len(segs)-1], "set")
	if err != nil {
		return err
	}

	last := segs[len(segs)-1]
	if last.isIndex {
		seq := asSeq(parent)
		if KindOf(parent) != KindList {
			return stepError("set", path, last, parent)
		}
		if last.index >= len(seq) {
			return mdwerrors.NotFound(mdwerrors.ModuleValuex, "set", path)
		}
		seq[last.index] = x
		return nil
	}

	switch t := parent.(type) {
	case *Object:
		t.Set(last.key, x)
		return nil
	case map[string]any:
		if t == nil {
			return mdwerrors.InvalidArgument(mdwerrors.ModuleValuex, "set", path, "a non-nil map")
		}
		t[last.key] = x
		return nil
	}
	return stepError("set", path, last, parent)
}

func walk(v Value, segs []segment, op string) (Value, error) {
	cur := v
	var walked strings.Builder
	walked.WriteString("$")
	for _, seg := range segs {
		walked.WriteString(seg.String())
		if seg.isIndex {
			if KindOf(cur) != KindList {
				return nil, stepError(op, walked.String(), seg, cur)
			}
			seq := asSeq(cur)
			if seg.index >= len(seq) {
				return nil, mdwerrors.NotFound(mdwerrors.ModuleValuex, op, walked.String())
			}
			cur = seq[seg.index]
			continue
		}

		if KindOf(cur) != KindObject {
			return nil, stepError(op, walked.String(), seg, cur)
		}
		next, ok := lookup(cur, seg.key)
		if !ok {
			return nil, mdwerrors.NotFound(mdwerrors.ModuleValuex, op, walked.String())
		}
		cur = next
	}
	return cur, nil
}

func stepError(op, path string, seg segment, cur Value) error {
	expected := "an object"
	if seg.isIndex {
		expected = "a list"
	}
	return mdwerrors.InvalidArgument(mdwerrors.ModuleValuex, op, path,
		fmt.Sprintf("%s at this step, found %s", expected, KindOf(cur)))
}

func parsePath(path string) ([]segment, error) {
	p := strings.TrimPrefix(path, "$")
	var segs []segment

	for i := 0; i < len(p); {
		switch {
		case p[i] == '[':
			seg, next, err := parseBracket(p, i)
			if err != nil {
				return nil, badPath(path, err.Error())
			}
			segs = append(segs, seg)
			i = next
		case p[i] == '.' || i == 0:
			if p[i] == '.' {
				i++
			}
			j := i
			for j < len(p) && p[j] != '.' && p[j] != '[' {
				j++
			}
			if j == i {
				return nil, badPath(path, "empty key")
			}
			segs = append(segs, segment{key: p[i:j]})
			i = j
		default:
			return nil, badPath(path, fmt.Sprintf("unexpected %q at offset %d", p[i], i))
		}
	}
	return segs, nil
}

// parseBracket parses "[3]" or `["key"]` starting at p[i] == '['.
func parseBracket(p string, i int) (segment, int, error) {
	if i+1 < len(p) && p[i+1] == '"' {
		j := i + 2
		for j < len(p) && p[j] != '"' {
			if p[j] == '\\' {
				j++
			}
			j++
		}
		if j+1 >= len(p) || p[j+1] != ']' {
			return segment{}, 0, fmt.Errorf("unterminated quoted key")
		}
		key, err := strconv.Unquote(p[i+1 : j+1])
		if err != nil {
			return segment{}, 0, fmt.Errorf("invalid quoted key")
		}
		return segment{key: key}, j + 2, nil
	}

	end := strings.IndexByte(p[i:], ']')
	if end < 0 {
		return segment{}, 0, fmt.Errorf("missing ]")
	}
	n, err := strconv.Atoi(p[i+1 : i+end])
	if err != nil || n < 0 {
		return segment{}, 0, fmt.Errorf("invalid index %q", p[i+1:i+end])
	}
	return segment{index: n, isIndex: true}, i + end + 1, nil
}

func badPath(path, reason string) error {
	return mdwerrors.InvalidArgument(mdwerrors.ModuleValuex, "path", path, "a valid path: "+reason)
}
