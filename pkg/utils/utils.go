package utils

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/go-errors/errors"
)

// SplitLines takes a multiline string and splits it on newlines. A trailing
// newline does not produce an extra empty line.
func SplitLines(multilineString string) []string {
	multilineString = NormalizeLinefeeds(multilineString)
	if multilineString == "" || multilineString == "\n" {
		return make([]string, 0)
	}
	lines := strings.Split(multilineString, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	return lines
}

// NormalizeLinefeeds turns Windows (\r\n) and old Mac (\r) line endings into \n
func NormalizeLinefeeds(str string) string {
	str = strings.Replace(str, "\r\n", "\n", -1)
	str = strings.Replace(str, "\r", "\n", -1)
	return str
}

// ForEachLine calls the callback once for every line of content, in order.
// It stops at the first line that isn't valid UTF-8 and returns an error for it.
func ForEachLine(content []byte, callback func(line string)) error {
	for i, line := range SplitLines(string(content)) {
		if !utf8.ValidString(line) {
			return errors.Errorf("line %d is not valid UTF-8", i+1)
		}
		callback(line)
	}
	return nil
}

// TrimTrailingWhitespace strips whitespace (including line terminators) from
// the end of a string, leaving leading whitespace alone
func TrimTrailingWhitespace(str string) string {
	return strings.TrimRightFunc(str, unicode.IsSpace)
}

// ResolvePlaceholderString populates a template with values
func ResolvePlaceholderString(str string, arguments map[string]string) string {
	for key, value := range arguments {
		str = strings.Replace(str, "{{"+key+"}}", value, -1)
	}
	return str
}

// ColoredString takes a string and a colour attribute and returns a colored
// string with that attribute
func ColoredString(str string, colorAttribute color.Attribute) string {
	// FgWhite is treated as the terminal default so light themes stay readable
	if colorAttribute == color.FgWhite {
		return str
	}
	colour := color.New(colorAttribute)
	return ColoredStringDirect(str, colour)
}

// ColoredStringDirect used for aggregating a few color attributes rather than
// just sending a single one
func ColoredStringDirect(str string, colour *color.Color) string {
	return colour.SprintFunc()(fmt.Sprint(str))
}

// GetColorAttribute gets a color attribute from a string
func GetColorAttribute(key string) color.Attribute {
	colorMap := map[string]color.Attribute{
		"default":   color.FgWhite,
		"black":     color.FgBlack,
		"red":       color.FgRed,
		"green":     color.FgGreen,
		"yellow":    color.FgYellow,
		"blue":      color.FgBlue,
		"magenta":   color.FgMagenta,
		"cyan":      color.FgCyan,
		"white":     color.FgWhite,
		"bold":      color.Bold,
		"underline": color.Underline,
	}
	value, present := colorMap[key]
	if present {
		return value
	}
	return color.FgWhite
}
