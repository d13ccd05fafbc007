package pbxproj

import (
	"regexp"
	"strings"
)

// Setting is one build setting. List settings render as a parenthesized
// array and ignore Value.
type Setting struct {
	Key   string
	Value string
	List  []string
}

// Settings holds the four build configurations: Debug and Release at the
// project level and again for the application target.
type Settings struct {
	ProjectDebug   []Setting
	ProjectRelease []Setting
	TargetDebug    []Setting
	TargetRelease  []Setting
}

// Target carries the per-app values that vary between projects.
type Target struct {
	BundleID         string
	DeploymentTarget string
	SwiftVersion     string
	MarketingVersion string
}

// warnings are shared by both project-level configurations.
var warnings = []Setting{
	{Key: "CLANG_WARN_BLOCK_CAPTURE_AUTORELEASING", Value: "YES"},
	{Key: "CLANG_WARN_BOOL_CONVERSION", Value: "YES"},
	{Key: "CLANG_WARN_COMMA", Value: "YES"},
	{Key: "CLANG_WARN_CONSTANT_CONVERSION", Value: "YES"},
	{Key: "CLANG_WARN_DEPRECATED_OBJC_IMPLEMENTATIONS", Value: "YES"},
	{Key: "CLANG_WARN_DIRECT_OBJC_ISA_USAGE", Value: "YES_ERROR"},
	{Key: "CLANG_WARN_DOCUMENTATION_COMMENTS", Value: "YES"},
	{Key: "CLANG_WARN_EMPTY_BODY", Value: "YES"},
	{Key: "CLANG_WARN_ENUM_CONVERSION", Value: "YES"},
	{Key: "CLANG_WARN_INFINITE_RECURSION", Value: "YES"},
	{Key: "CLANG_WARN_INT_CONVERSION", Value: "YES"},
	{Key: "CLANG_WARN_NON_LITERAL_NULL_CONVERSION", Value: "YES"},
	{Key: "CLANG_WARN_OBJC_IMPLICIT_RETAIN_SELF", Value: "YES"},
	{Key: "CLANG_WARN_OBJC_LITERAL_CONVERSION", Value: "YES"},
	{Key: "CLANG_WARN_OBJC_ROOT_CLASS", Value: "YES_ERROR"},
	{Key: "CLANG_WARN_QUOTED_INCLUDE_IN_FRAMEWORK_HEADER", Value: "YES"},
	{Key: "CLANG_WARN_RANGE_LOOP_ANALYSIS", Value: "YES"},
	{Key: "CLANG_WARN_STRICT_PROTOTYPES", Value: "YES"},
	{Key: "CLANG_WARN_SUSPICIOUS_MOVE", Value: "YES"},
	{Key: "CLANG_WARN_UNGUARDED_AVAILABILITY", Value: "YES_AGGRESSIVE"},
	{Key: "CLANG_WARN_UNREACHABLE_CODE", Value: "YES"},
	{Key: "CLANG_WARN__DUPLICATE_METHOD_MATCH", Value: "YES"},
	{Key: "COPY_PHASE_STRIP", Value: "NO"},
}

var languages = []Setting{
	{Key: "ALWAYS_SEARCH_USER_PATHS", Value: "NO"},
	{Key: "ASYNC_AWAIT_CHECKING", Value: "YES"},
	{Key: "CLANG_ANALYZER_NONNULL", Value: "YES"},
	{Key: "CLANG_ANALYZER_NUMBER_OBJECT_CONVERSION", Value: "YES_AGGRESSIVE"},
	{Key: "CLANG_CXX_LANGUAGE_STANDARD", Value: "gnu++20"},
	{Key: "CLANG_ENABLE_MODULES", Value: "YES"},
	{Key: "CLANG_ENABLE_OBJC_ARC", Value: "YES"},
	{Key: "CLANG_ENABLE_OBJC_WEAK", Value: "YES"},
}

var gccWarnings = []Setting{
	{Key: "GCC_WARN_64_TO_32_BIT_CONVERSION", Value: "YES"},
	{Key: "GCC_WARN_ABOUT_RETURN_TYPE", Value: "YES_ERROR"},
	{Key: "GCC_WARN_UNDECLARED_SELECTOR", Value: "YES"},
	{Key: "GCC_WARN_UNINITIALIZED_AUTOS", Value: "YES_AGGRESSIVE"},
	{Key: "GCC_WARN_UNUSED_FUNCTION", Value: "YES"},
	{Key: "GCC_WARN_UNUSED_VARIABLE", Value: "YES"},
}

func concat(parts ...[]Setting) []Setting {
	var out []Setting
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// DefaultSettings returns the fixed compiler, linker and signing settings
// for an iOS SwiftUI application, filled in with t.
func DefaultSettings(t Target) Settings {
	deployment := Setting{Key: "IPHONEOS_DEPLOYMENT_TARGET", Value: t.DeploymentTarget}

	projectDebug := concat(languages, warnings, []Setting{
		{Key: "DEBUG_INFORMATION_FORMAT", Value: "dwarf"},
		{Key: "ENABLE_STRICT_OBJC_MSGSEND", Value: "YES"},
		{Key: "ENABLE_TESTABILITY", Value: "YES"},
		{Key: "ENABLE_USER_SCRIPT_SANDBOXING", Value: "YES"},
		{Key: "GCC_C_LANGUAGE_STANDARD", Value: "gnu17"},
		{Key: "GCC_DYNAMIC_NO_PIC", Value: "NO"},
		{Key: "GCC_NO_COMMON_BLOCKS", Value: "YES"},
		{Key: "GCC_OPTIMIZATION_LEVEL", Value: "0"},
		{Key: "GCC_PREPROCESSOR_DEFINITIONS", List: []string{"DEBUG=1", "$(inherited)"}},
	}, gccWarnings, []Setting{
		deployment,
		{Key: "LOCALIZATION_PREFERS_STRING_CATALOGS", Value: "YES"},
		{Key: "MTL_ENABLE_DEBUG_INFO", Value: "INCLUDE_SOURCE"},
		{Key: "MTL_FAST_MATH", Value: "YES"},
		{Key: "ONLY_ACTIVE_ARCH", Value: "YES"},
		{Key: "SDKROOT", Value: "iphoneos"},
		{Key: "SWIFT_ACTIVE_COMPILATION_CONDITIONS", Value: "DEBUG $(inherited)"},
		{Key: "SWIFT_OPTIMIZATION_LEVEL", Value: "-Onone"},
	})

	projectRelease := concat(languages, warnings, []Setting{
		{Key: "DEBUG_INFORMATION_FORMAT", Value: "dwarf-with-dsym"},
		{Key: "ENABLE_NS_ASSERTIONS", Value: "NO"},
		{Key: "ENABLE_STRICT_OBJC_MSGSEND", Value: "YES"},
		{Key: "ENABLE_USER_SCRIPT_SANDBOXING", Value: "YES"},
		{Key: "GCC_C_LANGUAGE_STANDARD", Value: "gnu17"},
		{Key: "GCC_NO_COMMON_BLOCKS", Value: "YES"},
	}, gccWarnings, []Setting{
		deployment,
		{Key: "LOCALIZATION_PREFERS_STRING_CATALOGS", Value: "YES"},
		{Key: "MTL_ENABLE_DEBUG_INFO", Value: "NO"},
		{Key: "MTL_FAST_MATH", Value: "YES"},
		{Key: "SDKROOT", Value: "iphoneos"},
		{Key: "SWIFT_COMPILATION_MODE", Value: "wholemodule"},
		{Key: "VALIDATE_PRODUCT", Value: "YES"},
	})

	return Settings{
		ProjectDebug:   projectDebug,
		ProjectRelease: projectRelease,
		TargetDebug:    targetSettings(t),
		TargetRelease:  targetSettings(t),
	}
}

// targetSettings is identical for Debug and Release.
func targetSettings(t Target) []Setting {
	return []Setting{
		{Key: "ASSETCATALOG_COMPILER_APPICON_NAME", Value: "AppIcon"},
		{Key: "ASSETCATALOG_COMPILER_GLOBAL_ACCENT_COLOR_NAME", Value: "AccentColor"},
		{Key: "CODE_SIGN_STYLE", Value: "Automatic"},
		{Key: "CURRENT_PROJECT_VERSION", Value: "1"},
		{Key: "DEVELOPMENT_ASSET_PATHS", Value: ""},
		{Key: "ENABLE_PREVIEWS", Value: "YES"},
		{Key: "GENERATE_INFOPLIST_FILE", Value: "NO"},
		{Key: "INFOPLIST_FILE", Value: "Info.plist"},
		{Key: "INFOPLIST_KEY_UIApplicationSceneManifest_Generation", Value: "YES"},
		{Key: "INFOPLIST_KEY_UIApplicationSupportsIndirectInputEvents", Value: "YES"},
		{Key: "INFOPLIST_KEY_UILaunchScreen_Generation", Value: "YES"},
		{Key: "INFOPLIST_KEY_UISupportedInterfaceOrientations_iPad", Value: "UIInterfaceOrientationPortrait UIInterfaceOrientationPortraitUpsideDown UIInterfaceOrientationLandscapeLeft UIInterfaceOrientationLandscapeRight"},
		{Key: "INFOPLIST_KEY_UISupportedInterfaceOrientations_iPhone", Value: "UIInterfaceOrientationPortrait UIInterfaceOrientationLandscapeLeft UIInterfaceOrientationLandscapeRight"},
		{Key: "LD_RUNPATH_SEARCH_PATHS", List: []string{"$(inherited)", "@executable_path/Frameworks"}},
		{Key: "MARKETING_VERSION", Value: t.MarketingVersion},
		{Key: "PRODUCT_BUNDLE_IDENTIFIER", Value: t.BundleID},
		{Key: "PRODUCT_NAME", Value: "$(TARGET_NAME)"},
		{Key: "SWIFT_EMIT_LOC_STRINGS", Value: "YES"},
		{Key: "SWIFT_VERSION", Value: t.SwiftVersion},
		{Key: "TARGETED_DEVICE_FAMILY", Value: "1,2"},
	}
}

var bare = regexp.MustCompile(`^[A-Za-z0-9_./]+$`)

// Quote renders s as a plist string: bare when it only uses characters
// that need no quoting, double-quoted and escaped otherwise.
func Quote(s string) string {
	if bare.MatchString(s) {
		return s
	}
	return QuoteAlways(s)
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

// QuoteAlways double-quotes s regardless of its content.
func QuoteAlways(s string) string {
	return `"` + escaper.Replace(s) + `"`
}
