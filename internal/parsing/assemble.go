package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	priceTerminatedPattern  = regexp.MustCompile(`\d+\.\d{2}\s*$`)
	quantityOverridePattern = regexp.MustCompile(`(?i)^(\d+)\s*@\s*\$(\d+\.\d{2})\s*EACH$`)
)

// itemAssembler merges consecutive raw lines into logical item lines. OCR
// segmentation splits one item's wrapped description across physical lines;
// a trailing price is the sole completion signal.
type itemAssembler struct {
	buf string
}

// feed appends a candidate line to the accumulator. When the accumulated
// text ends with a price the logical line is complete: it is returned and
// the accumulator resets.
func (a *itemAssembler) feed(line string) (string, bool) {
	if a.buf == "" {
		a.buf = line
	} else {
		a.buf += " " + line
	}
	if priceTerminatedPattern.MatchString(a.buf) {
		return a.flush()
	}
	return "", false
}

// flush emits whatever is accumulated, complete or not. Called at end of
// input so a trailing fragment never terminated by a price still becomes a
// best-effort item line.
func (a *itemAssembler) flush() (string, bool) {
	if a.buf == "" {
		return "", false
	}
	line := strings.TrimSpace(a.buf)
	a.buf = ""
	return line, true
}

// quantityOverride matches a whole line of the shape "N @ $X.XX EACH" and
// returns the quantity it carries. Such a line retroactively corrects the
// most recently completed item and contributes no item of its own.
func quantityOverride(line string) (int, bool) {
	m := quantityOverridePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return qty, true
}

// assembleItems reconstructs and parses the item candidates in order.
// Override detection runs before accumulation so a quantity line following a
// completed item corrects that item instead of polluting the next one; an
// override with no completed item yet is dropped.
func assembleItems(candidates []string, profile *Profile) []Item {
	items := make([]Item, 0, len(candidates))
	var assembler itemAssembler

	for _, line := range candidates {
		if qty, ok := quantityOverride(line); ok {
			if len(items) > 0 {
				items[len(items)-1].Quantity = qty
			}
			continue
		}
		if logical, complete := assembler.feed(line); complete {
			items = append(items, ParseItemLine(logical, profile))
		}
	}
	if logical, ok := assembler.flush(); ok {
		items = append(items, ParseItemLine(logical, profile))
	}
	return items
}
