// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numutil

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// IntlNumberFormat formats n using the thousands-grouping and digit
// conventions of the given BCP 47 locale tag (e.g. "en-US", "de-DE",
// "fr-FR"). An unparsable tag falls back to the default locale.
func IntlNumberFormat(n int, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%d", n)
}
