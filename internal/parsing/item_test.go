package parsing

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseItemLine", func() {
	var (
		line    string
		profile *Profile
		item    Item
	)

	BeforeEach(func() {
		profile = LookupProfile("coles")
	})

	JustBeforeEach(func() {
		item = ParseItemLine(line, profile)
	})

	When("the line carries a volume and a price", func() {
		BeforeEach(func() {
			line = "Milk 2L 4.50"
		})

		It("canonicalizes litres to millilitres", func() {
			Expect(item.Weight).To(HaveValue(Equal(Weight{Magnitude: 2000, Unit: UnitMillilitre})))
		})

		It("extracts the trailing price", func() {
			Expect(item.Price).To(HaveValue(Equal(4.50)))
		})

		It("strips both tokens from the name", func() {
			Expect(item.Name).To(Equal("Milk"))
		})

		It("defaults the quantity to 1", func() {
			Expect(item.Quantity).To(Equal(1))
		})
	})

	When("the line carries a mass in kilograms", func() {
		BeforeEach(func() {
			line = "Bananas 1.2kg 3.00"
		})

		It("canonicalizes kilograms to grams", func() {
			Expect(item.Weight).To(HaveValue(Equal(Weight{Magnitude: 1200, Unit: UnitGram})))
		})
	})

	When("the line carries a pack count", func() {
		BeforeEach(func() {
			line = "Dinner Rolls 6 pack 3.80"
		})

		It("keeps the literal count", func() {
			Expect(item.Weight).To(HaveValue(Equal(Weight{Magnitude: 6, Unit: UnitPack})))
			Expect(item.Name).To(Equal("Dinner Rolls"))
		})
	})

	When("the line carries a quantity token", func() {
		BeforeEach(func() {
			line = "Choc Biscuits 250g x2 3.50"
		})

		It("extracts the quantity and removes the token", func() {
			Expect(item.Quantity).To(Equal(2))
			Expect(item.Name).To(Equal("Choc Biscuits"))
		})

		It("still recovers weight and price", func() {
			Expect(item.Weight).To(HaveValue(Equal(Weight{Magnitude: 250, Unit: UnitGram})))
			Expect(item.Price).To(HaveValue(Equal(3.50)))
		})
	})

	When("the line has no price", func() {
		BeforeEach(func() {
			line = "Reusable Bag"
		})

		It("leaves the price absent and keeps the whole line as the name", func() {
			Expect(item.Price).To(BeNil())
			Expect(item.Name).To(Equal("Reusable Bag"))
		})
	})

	When("two numeric tokens could both look like a price", func() {
		BeforeEach(func() {
			line = "Juice 10.99 Special 5.50"
		})

		It("only the end-anchored one wins", func() {
			Expect(item.Price).To(HaveValue(Equal(5.50)))
			Expect(item.Name).To(Equal("Juice 10.99 Special"))
		})
	})

	When("the line is nothing but numeric tokens", func() {
		BeforeEach(func() {
			line = "250g 3.50"
		})

		It("yields an empty name without error", func() {
			Expect(item.Name).To(BeEmpty())
			Expect(item.Price).To(HaveValue(Equal(3.50)))
			Expect(item.Weight).To(HaveValue(Equal(Weight{Magnitude: 250, Unit: UnitGram})))
		})
	})

	When("stray punctuation surrounds the name", func() {
		BeforeEach(func() {
			line = "* Oranges - 4.00"
		})

		It("strips the edges", func() {
			Expect(item.Name).To(Equal("Oranges"))
		})
	})

	Describe("round-tripping generated item lines", func() {
		type tokenCase struct {
			weightToken string
			weight      Weight
			qtyToken    string
			qty         int
		}

		cases := []tokenCase{
			{"500g", Weight{500, UnitGram}, "", 1},
			{"1.5kg", Weight{1500, UnitGram}, "x3", 3},
			{"600ml", Weight{600, UnitMillilitre}, "qty 2", 2},
			{"2L", Weight{2000, UnitMillilitre}, "", 1},
			{"4 packs", Weight{4, UnitPack}, "x2", 2},
		}

		It("recovers weight, quantity and price and excludes the tokens from the name", func() {
			for _, c := range cases {
				line := "Sample Product " + c.weightToken
				if c.qtyToken != "" {
					line += " " + c.qtyToken
				}
				line += " 9.95"

				item := ParseItemLine(line, profile)
				desc := fmt.Sprintf("line %q", line)
				Expect(item.Weight).To(HaveValue(Equal(c.weight)), desc)
				Expect(item.Quantity).To(Equal(c.qty), desc)
				Expect(item.Price).To(HaveValue(Equal(9.95)), desc)
				Expect(item.Name).To(Equal("Sample Product"), desc)
			}
		})
	})
})
