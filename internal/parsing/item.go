package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit is a weight/volume unit token as printed on a receipt.
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMillilitre Unit = "ml"
	UnitLitre      Unit = "l"
	UnitPack       Unit = "pack"
	UnitPacks      Unit = "packs"
)

// Weight is a canonicalized physical quantity. After parsing, Unit is always
// one of UnitGram, UnitMillilitre or UnitPack: kilograms are stored as grams
// and litres as millilitres, so consumers never convert units themselves.
// Pack counts keep their literal magnitude.
type Weight struct {
	Magnitude float64 `json:"magnitude"`
	Unit      Unit    `json:"unit"`
}

// Item is one purchased line item. Quantity defaults to 1; Weight and Price
// are nil when the source line carried no such token.
type Item struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Weight   *Weight  `json:"weight,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// UnitMapping describes how a unit token canonicalizes: the base unit it maps
// to and the factor its magnitude is multiplied by.
type UnitMapping struct {
	Canonical Unit
	Factor    float64
}

// DefaultUnitTable returns the unit-token table shared by the built-in store
// profiles: singular and plural spellings of grams, kilograms, millilitres,
// litres (both spellings) and packs.
func DefaultUnitTable() map[string]UnitMapping {
	return map[string]UnitMapping{
		"g":           {UnitGram, 1},
		"gram":        {UnitGram, 1},
		"grams":       {UnitGram, 1},
		"kg":          {UnitGram, 1000},
		"kilogram":    {UnitGram, 1000},
		"kilograms":   {UnitGram, 1000},
		"ml":          {UnitMillilitre, 1},
		"millilitre":  {UnitMillilitre, 1},
		"millilitres": {UnitMillilitre, 1},
		"l":           {UnitMillilitre, 1000},
		"litre":       {UnitMillilitre, 1000},
		"litres":      {UnitMillilitre, 1000},
		"liter":       {UnitMillilitre, 1000},
		"liters":      {UnitMillilitre, 1000},
		"pack":        {UnitPack, 1},
		"packs":       {UnitPack, 1},
	}
}

var (
	trailingPricePattern = regexp.MustCompile(`(\d+\.\d{2})\s*$`)
	quantityTokenPattern = regexp.MustCompile(`(?i)(qty|quantity|x)\s?(\d+)`)
	edgePunctPattern     = regexp.MustCompile(`^[^A-Za-z0-9]+|[^A-Za-z0-9]+$`)
)

// ParseItemLine extracts an Item from one logical, already-reconstructed item
// line. The weight token is located first on the whole line; the trailing
// price then splits off the name remainder; the quantity token and the weight
// token are removed from the remainder in that order before name cleanup.
// A line of nothing but numeric tokens legitimately yields an empty name.
func ParseItemLine(line string, profile *Profile) Item {
	line = NormalizeLine(line)

	item := Item{Quantity: 1}

	var weightToken string
	if m := profile.weightPattern.FindStringSubmatch(line); m != nil {
		magnitude, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			mapping := profile.Units[strings.ToLower(m[2])]
			item.Weight = &Weight{
				Magnitude: magnitude * mapping.Factor,
				Unit:      mapping.Canonical,
			}
			weightToken = m[0]
		}
	}

	remainder := line
	if loc := trailingPricePattern.FindStringSubmatchIndex(line); loc != nil {
		price, err := strconv.ParseFloat(line[loc[2]:loc[3]], 64)
		if err == nil {
			item.Price = &price
		}
		remainder = strings.TrimSpace(line[:loc[0]])
	}

	if m := quantityTokenPattern.FindStringSubmatchIndex(remainder); m != nil {
		if qty, err := strconv.Atoi(remainder[m[4]:m[5]]); err == nil {
			item.Quantity = qty
		}
		remainder = remainder[:m[0]] + remainder[m[1]:]
	}

	if weightToken != "" {
		remainder = strings.Replace(remainder, weightToken, " ", 1)
	}

	name := edgePunctPattern.ReplaceAllString(strings.TrimSpace(remainder), "")
	item.Name = NormalizeLine(name)

	return item
}
