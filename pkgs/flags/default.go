package flags

// Keys of the default registry.
const (
	WithGUI            = "with_gui"
	WithAssimp         = "with_assimp"
	WithJava           = "with_java"
	WithPython         = "with_python"
	BuildShared        = "build_shared"
	WithoutProjects    = "without_projects"
	WithoutTests       = "without_tests"
	WithoutClangFormat = "without_clang_format"
	WithClangTidy      = "with_clang_tidy"
	WithIWYU           = "with_iwyu"
	WithGPU            = "with_gpu"
	DisableTuning      = "disable_tuning"
)

// Default is the registry used by the cfgen command.
var Default = MustNew(
	Flag{WithGUI, "BUILD_QT5_GUI=ON", "Build with Qt5 User Interface"},
	Flag{WithAssimp, "BUILD_ASSIMP=ON", "Build with Assimp"},
	Flag{WithJava, "BUILD_JAVA_BINDINGS=ON", "Build Java bindings and JNI classes (requires JDK and SWIG)"},
	Flag{WithPython, "BUILD_PYTHON_BINDINGS=ON", "Build Python bindings (requires Python and SWIG)"},
	Flag{BuildShared, "BUILD_SHARED_LIBS=ON", "Build shared libraries (.so/.dylib/.dll) instead of static libraries (.a). Forced on by --with-java."},
	Flag{WithoutProjects, "BUILD_PROJECTS=OFF", "Disable building of the included projects."},
	Flag{WithoutTests, "BUILD_TESTS=OFF", "Disable building of the included tests."},
	Flag{WithoutClangFormat, "ENABLE_CLANG_FORMAT=OFF", "Disable auto-formatting of code."},
	Flag{WithClangTidy, "ENABLE_CLANG_TIDY=ON", "Enable using clang-tidy to analyze code."},
	Flag{WithIWYU, "ENABLE_IWYU=ON", "Enable running include-what-you-use on code."},
	Flag{WithGPU, "ENABLE_GPU=ON", "Enable gpu processing."},
	Flag{DisableTuning, "DISABLE_ARCHITECTURE_OPTIMIZATION=ON", "Fallback to tuning for SSE2 instead of newer instruction sets."},
)
