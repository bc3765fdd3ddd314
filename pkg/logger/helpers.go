package logger

import (
	"fmt"
	"strings"
)

// Icons used by mission console output.
const (
	IconSatellite = "🛰️"
	IconAlert     = "🚨"
	IconGlobe     = "🌍"
	IconWrench    = "🔧"
	IconDebris    = "🗑️"
	IconSave      = "💾"
	IconChart     = "📊"
	IconRocket    = "🚀"
	IconCheck     = "✅"
	IconCross     = "❌"
	IconDot       = "•"
)

// Successf logs a formatted success message with a checkmark.
func Successf(format string, args ...interface{}) {
	defaultLogger.Infof(IconCheck+" "+format, args...)
}

// Failf logs a formatted failure message with a cross.
func Failf(format string, args ...interface{}) {
	defaultLogger.Errorf(IconCross+" "+format, args...)
}

// Section prints a visual section separator with a title.
func Section(title string) {
	line := strings.Repeat("=", 50)
	if l, ok := defaultLogger.(*logger); ok && !l.noColor {
		fmt.Println(colorCyan + line + colorReset)
		fmt.Println(colorCyan + colorBold + title + colorReset)
		fmt.Println(colorCyan + line + colorReset)
		return
	}
	fmt.Println(line)
	fmt.Println(title)
	fmt.Println(line)
}

// KeyValue prints a key-value pair with aligned formatting.
func KeyValue(key string, value interface{}) {
	if l, ok := defaultLogger.(*logger); ok && !l.noColor {
		fmt.Printf("%s%s:%s %v\n", colorCyan, key, colorReset, value)
		return
	}
	fmt.Printf("%s: %v\n", key, value)
}

// List prints a bulleted list of items under a title.
func List(title string, items []string) {
	defaultLogger.Infof("%s", title)
	for _, item := range items {
		fmt.Printf("  %s %s\n", IconDot, item)
	}
}
