package script

import (
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// Compiled is a memoized compiled script fragment. Fragments are immutable
// once a definition is loaded, so the cache only ever grows.
type Compiled struct {
	Proto  *lua.FunctionProto
	Source string
	Tag    string
}

type cacheKey struct {
	source string
	tag    string
}

var (
	cacheMu    sync.Mutex
	protoCache = make(map[cacheKey]*Compiled)
)

// Compile parses and compiles source under the given role tag, reusing the
// process-wide cached artifact for identical source text. Compiled protos are
// independent of any single Lua state and can run on every engine.
func Compile(source, tag string) (*Compiled, error) {
	key := cacheKey{source: source, tag: tag}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if c, ok := protoCache[key]; ok {
		return c, nil
	}

	chunk, err := parse.Parse(strings.NewReader(source), tag)
	if err != nil {
		return nil, err
	}
	proto, err := lua.Compile(chunk, tag)
	if err != nil {
		return nil, err
	}

	c := &Compiled{Proto: proto, Source: source, Tag: tag}
	protoCache[key] = c
	return c, nil
}
