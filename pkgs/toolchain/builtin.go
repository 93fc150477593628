package toolchain

const (
	makefiles = "Unix Makefiles"
	xcode     = "Xcode"
)

var builtin = []Spec{
	{
		Name:        "osx-10-13-dep-10-10-cxx17",
		Generator:   xcode,
		MultiConfig: true,
		Platform:    Apple,
		Description: "macOS SDK 10.13, Deployment Target OSX 10.10, Clang/LLVM, C++17, Xcode",
	},
	{
		Name:        "osx-10-14-dep-10-10-cxx17",
		Generator:   xcode,
		MultiConfig: true,
		Platform:    Apple,
		Description: "macOS SDK 10.14, Deployment Target OSX 10.10, Clang/LLVM, C++17, Xcode",
	},
	{
		Name:        "ios-11-4-dep-9-0-bitcode-cxx17",
		Generator:   xcode,
		MultiConfig: true,
		Platform:    Apple,
		Description: "iOS SDK 11.4, Deployment Target iOS 9.0, Clang/LLVM, Bitcode, C++17, Xcode",
	},
	{
		Name:        "clang-libcxx17-fpic",
		Generator:   makefiles,
		Platform:    Generic,
		Description: "Clang/LLVM, LLVM Standard C++ Library (libc++), C++17, PIC, Default Generator: Unix Makefiles",
	},
	{
		Name:        "emscripten-cxx17",
		Generator:   makefiles,
		Platform:    Web,
		Description: "Emscripten/LLVM, C++17, Unix Makefiles",
	},
	{
		Name:        "gcc-8-cxx17-fpic",
		Generator:   makefiles,
		Platform:    Generic,
		Description: "gcc/g++ 8, C++17, PIC, Unix Makefiles",
	},
	{
		Name:          "vs-15-2017-win64-cxx17",
		Generator:     "Visual Studio 15 2017 Win64",
		MultiConfig:   true,
		Platform:      Windows,
		GeneratorArgs: []string{"-T", "host=x64"},
		Description:   "Visual Studio 2017 Win64, C++17",
	},
	{
		Name:          "vs-16-2019-win64-cxx17",
		Generator:     "Visual Studio 16 2019",
		MultiConfig:   true,
		Platform:      Windows,
		GeneratorArgs: []string{"-A", "x64"},
		Description:   "Visual Studio 2019 Win64, C++17",
	},
}
