package parse

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/scrapekit/strut/etree"
)

// markupBuilder assembles a tree from tokenizer events. The stack holds
// the currently open elements, cur is the most recently processed
// element, and afterEnd records whether the last event was an end tag,
// which decides whether the next text event is cur's inner text or its
// tail.
type markupBuilder struct {
	stack    []*etree.Node
	cur      *etree.Node
	afterEnd bool
}

// parseMarkup scans s left to right and builds a tree, tolerating
// malformed nesting. The returned root is the last element touched,
// which for input with several unclosed top-level elements is not
// necessarily the first one; callers rely on that, so it must not
// change. A nil root with nil error means no element was ever opened.
func parseMarkup(s string) (*etree.Node, error) {
	b := &markupBuilder{}
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			return b.cur, nil
		case html.StartTagToken:
			name, attr := tagEvent(z)
			b.startTag(name, attr)
		case html.SelfClosingTagToken:
			name, attr := tagEvent(z)
			b.startTag(name, attr)
			b.endTag(name)
		case html.EndTagToken:
			name, _ := tagEvent(z)
			b.endTag(name)
		case html.TextToken:
			b.text(string(z.Text()))
		}
		// comments and doctypes pass through untouched
	}
}

// tagEvent reads the current tag's name and attributes. Attributes
// without a value come back as the empty string, never unset.
func tagEvent(z *html.Tokenizer) (string, map[string]string) {
	name, hasAttr := z.TagName()
	attr := map[string]string{}
	for hasAttr {
		var k, v []byte
		k, v, hasAttr = z.TagAttr()
		attr[string(k)] = string(v)
	}
	return string(name), attr
}

func (b *markupBuilder) startTag(name string, attr map[string]string) {
	b.afterEnd = false
	el := etree.NewWithAttr(name, attr)
	if n := len(b.stack); n > 0 {
		b.stack[n-1].Append(el)
	}
	b.stack = append(b.stack, el)
	b.cur = el
}

// endTag pops open elements until the named one comes off the stack,
// implicitly closing anything opened above it. If the name is nowhere
// on the stack the event is dropped: stray closing tags are tolerated.
func (b *markupBuilder) endTag(name string) {
	if !b.onStack(name) {
		return
	}
	for {
		n := len(b.stack) - 1
		b.afterEnd = true
		b.cur = b.stack[n]
		b.stack = b.stack[:n]
		if b.cur.Name == name {
			return
		}
	}
}

func (b *markupBuilder) onStack(name string) bool {
	for _, el := range b.stack {
		if el.Name == name {
			return true
		}
	}
	return false
}

// text trims data and stores it on cur: as tail if the last event was
// an end tag, as inner text otherwise. Text before any element is
// dropped.
func (b *markupBuilder) text(data string) {
	if b.cur == nil {
		return
	}
	data = strings.TrimSpace(data)
	if b.afterEnd {
		b.cur.Tail = data
		return
	}
	b.cur.Text = data
}
