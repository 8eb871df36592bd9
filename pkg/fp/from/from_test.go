package from_test

import (
	"github.com/ib-77/monads/pkg/fp/from"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("From", func() {
	Describe("Optional", func() {
		It("should be absent for a nil pointer", func() {
			// Given
			var ptr *string

			// When
			o := from.Optional(ptr)

			// Then
			Expect(o.IsAbsent()).To(BeTrue())
		})

		It("should hold a non-nil value", func() {
			// Given
			value := "text"

			// When
			o := from.Optional(&value)

			// Then
			Expect(o.IsPresent()).To(BeTrue())
			Expect(*o.MustGet()).To(Equal("text"))
		})

		It("should treat zero values as present", func() {
			Expect(from.Optional(0).IsPresent()).To(BeTrue())
			Expect(from.Optional("").IsPresent()).To(BeTrue())
		})
	})

	Describe("Maybe", func() {
		It("should be unknown for a nil map", func() {
			// Given
			var m map[string]int

			// When
			mb := from.Maybe(m)

			// Then
			Expect(mb.IsKnown()).To(BeFalse())
			Expect(mb.Equal(mb)).To(BeFalse())
		})

		It("should be known for a value", func() {
			// When
			mb := from.Maybe(42)

			// Then
			Expect(mb.IsKnown()).To(BeTrue())
			Expect(mb.Equal(from.Maybe(42))).To(BeTrue())
		})
	})
})
