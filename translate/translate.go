// Package translate formats user facing messages in the caller's locale.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/vigoux/rebf/cpu github.com/vigoux/rebf/config github.com/vigoux/rebf/emulator github.com/vigoux/rebf/io

// DEFAULT_LOCALE is used when no locale is requested or reported.
const DEFAULT_LOCALE = "en-US"

var printer atomic.Pointer[message.Printer]

func init() {
	SetLocale()
}

// systemLocales returns the preferred locales of the user, most preferred first.
func systemLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("translate: %v", err)
	}

	return
}

// SetLocale selects the message locale from a list of BCP 47 tags, most
// preferred first. With no tags the system locales are used.
//
// Messages already formatted, such as sentinel error texts, keep the
// locale in effect when they were built.
func SetLocale(locales ...string) {
	if len(locales) == 0 {
		locales = systemLocales()
	}
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	printer.Store(message.NewPrinter(message.MatchLanguage(locales...)))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
