package utils

import "strings"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// HasCssClass reports whether a space-separated html 'class'
// attribute value contains the given class name
func HasCssClass(classAttribute string, className string) bool {
	return StringInSlice(className, strings.Fields(classAttribute))
}
