package rule_test

import (
	"fmt"

	"github.com/walteh/renamerc/pkg/rule"
)

func ExampleCompile() {
	// Build a transform from a list of rules
	transform, err := rule.Compile([]rule.Rule{
		{Kind: rule.KindLiteral, Pattern: " ", Replacement: "_", All: true},
		{Kind: rule.KindRegex, Pattern: `^IMG_?`, Replacement: "photo-", IgnoreCase: true},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Apply it to a base name; the extension is only context
	base, err := transform("IMG 2041 beach", "jpg")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(base)

	// Output:
	// photo-2041_beach
}

func ExampleReplaceAll() {
	s, err := rule.ReplaceAll("Draft-draft-DRAFT", `draft`, rule.IgnoreCase, "final")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(s)

	// Output:
	// final-final-final
}
