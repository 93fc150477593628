package compose

import (
	"github.com/goplus/cfgen/pkgs/flags"
	"github.com/goplus/cfgen/pkgs/toolchain"
)

// flagRule forces key on or off for the toolchains matching a predicate.
type flagRule struct {
	applies func(toolchain.Descriptor) bool
	key     string
	on      bool
	warning string
}

// Emscripten cannot build Java bindings, shared libraries, the bundled
// projects or the tests.
var toolchainRules = []flagRule{
	{toolchain.Descriptor.IsEmscripten, flags.WithJava, false, "Emscripten toolchains do not build Java bindings; ignoring --with-java"},
	{toolchain.Descriptor.IsEmscripten, flags.BuildShared, false, "Emscripten toolchains do not build shared libraries; ignoring --build-shared"},
	{toolchain.Descriptor.IsEmscripten, flags.WithoutProjects, true, "Emscripten toolchains do not build the included projects; forcing --without-projects"},
	{toolchain.Descriptor.IsEmscripten, flags.WithoutTests, true, "Emscripten toolchains do not build the included tests; forcing --without-tests"},
}

// ApplyPolicy returns active adjusted for what tc can build, together with one
// warning per changed flag. active itself is left untouched. The result is a
// set of reg; keys and rules that reg does not declare are skipped.
//
// Compose never calls ApplyPolicy; callers decide whether to apply it.
func ApplyPolicy(reg *flags.Registry, tc toolchain.Descriptor, active flags.Set) (flags.Set, []string) {
	out, _ := reg.NewSet()
	for _, k := range active.Keys() {
		if next, err := out.With(k); err == nil {
			out = next
		}
	}
	var warnings []string
	for _, r := range toolchainRules {
		if !r.applies(tc) {
			continue
		}
		if _, ok := reg.Lookup(r.key); !ok {
			continue
		}
		if out.Has(r.key) == r.on {
			continue
		}
		var err error
		if r.on {
			out, err = out.With(r.key)
		} else {
			out, err = out.Without(r.key)
		}
		if err != nil {
			continue
		}
		warnings = append(warnings, r.warning)
	}
	return out, warnings
}
