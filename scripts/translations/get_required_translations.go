package main

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/christophe-duc/docker-credential-truth/pkg/i18n"
	"github.com/samber/lo"
)

// lists, per language, the messages still falling back to english
func main() {
	fmt.Println(getOutstandingTranslations())
}

func getOutstandingTranslations() string {
	sets := i18n.GetTranslationSets()
	languages := lo.Without(lo.Keys(sets), i18n.EN)
	sort.Strings(languages)

	output := ""
	for _, language := range languages {
		output += language + ":\n"
		v := reflect.ValueOf(sets[language])

		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				output += "  " + v.Type().Field(i).Name + "\n"
			}
		}
		output += "\n"
	}
	return output
}
