package render

import (
	"strings"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/beevik/etree"
)

// storageNamespaces are the prefixes storage-format markup uses without
// declaring them.
var storageNamespaces = map[string]string{
	"ac": "http://atlassian.com/content",
	"ri": "http://atlassian.com/resource/identifier",
	"at": "http://atlassian.com/template",
}

const storageRootTag = "docmap-storage-root"

// storageRootOpen declares every namespace in sorted prefix order.
var storageRootOpen = func() string {
	var b strings.Builder
	b.WriteString("<" + storageRootTag)
	for _, prefix := range []string{"ac", "at", "ri"} {
		b.WriteString(` xmlns:` + prefix + `="` + storageNamespaces[prefix] + `"`)
	}
	b.WriteString(">")
	return b.String()
}()

// parseXML reads text as an XML document.
var parseXML = func(text string) error {
	return etree.NewDocument().ReadFromString(text)
}

// validateStorage checks that rendered storage-format text is well-formed
// XML. Blank output is accepted.
func validateStorage(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	wrappedErr := parseXML(storageRootOpen + text + "</" + storageRootTag + ">")
	if wrappedErr == nil {
		return nil
	}

	// The raw text gets one retry, for output that is a complete document
	// on its own.
	if err := parseXML(text); err == nil {
		return nil
	}

	return errors.Wrap(wrappedErr, errors.ErrTemplateSyntax, "storage output is not well-formed XML").
		WithDetail(errors.DetailFormat, "storage")
}
