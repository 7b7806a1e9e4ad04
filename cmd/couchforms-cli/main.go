package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-couchforms/pkg/forms"
	"github.com/goliatone/go-couchforms/pkg/render"
	"github.com/goliatone/go-couchforms/pkg/renderers/divs"
	"github.com/goliatone/go-couchforms/pkg/renderers/table"
	"github.com/goliatone/go-couchforms/pkg/renderers/templated"
)

func main() {
	renderer := flag.String("renderer", "", "renderer to use (prompts when empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	registry := render.NewRegistry()
	registry.MustRegister(table.Name, table.Factory)
	registry.MustRegister(divs.Name, divs.Factory)
	registry.MustRegister(templated.Name, templated.Factory)

	name := *renderer
	if name == "" {
		prompt := &survey.Select{
			Message: "Renderer:",
			Options: registry.List(),
		}
		if err := survey.AskOne(prompt, &name); err != nil {
			log.Fatalf("Failed to select renderer: %v", err)
		}
	}

	factory, err := registry.Get(name)
	if err != nil {
		log.Fatalf("Failed to resolve renderer: %v", err)
	}

	outputHTML, err := forms.Render(sampleForm(), factory, nil)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(outputHTML), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(outputHTML)
	}
}
