// Package module enumerates the five mental-health data domains and the
// static descriptor each one carries through the pipeline. Adding a module is
// a data change here, not a code change in the orchestrator.
package module

import "fmt"

// Name identifies one of the five data domains.
type Name string

const (
	States      Name = "states"
	Disorders   Name = "disorders"
	Resources   Name = "resources"
	Assessments Name = "assessments"
	Sensors     Name = "sensors"
)

// baseURIRoot anchors every module's ontology IRI.
const baseURIRoot = "http://www.purl.org/mentalhealth"

// provenance is the shared license text embedded in every emitted header.
const provenance = `This mental health database inter-relates information about mental health
diagnoses, symptoms, assessment questionnaires, sensors, etc., and is
licensed under the terms of the Creative Commons BY license.
Current information can be found on the website, http://mentalhealth.tech.`

// Descriptor is the immutable per-module configuration: titles, IRIs, output
// naming, cross-reference workbooks, and the sibling-prefix exclusion list
// applied during prefix resolution.
type Descriptor struct {
	Name    Name
	Title   string
	Comment string

	// BaseURI is the ontology IRI; the module's own namespace is BaseURI + "#".
	BaseURI string

	// OutputFile is the Turtle document name inside the output directory.
	OutputFile string

	// CrossRefs lists the additional workbooks the module's ingester consults.
	CrossRefs []Name

	// ExcludePrefixes are sibling-module prefixes never emitted as imports
	// for this module. The table is intentionally asymmetric; it reproduces
	// the reference data exactly rather than a derived symmetric rule.
	ExcludePrefixes []string
}

// Prefix returns the module's own namespace prefix.
func (d Descriptor) Prefix() string {
	return "mhdb-" + string(d.Name)
}

// Namespace returns the module's namespace IRI.
func (d Descriptor) Namespace() string {
	return d.BaseURI + "#"
}

// catalog holds the five descriptors in canonical run order.
var catalog = []Descriptor{
	{
		Name:       States,
		Title:      "Mental Health Database: States",
		Comment:    provenance,
		BaseURI:    baseURIRoot + "/states",
		OutputFile: "mhdb-states.ttl",
		ExcludePrefixes: []string{
			"mhdb-disorders", "mhdb-resources", "mhdb-assessments", "mhdb-sensors",
		},
	},
	{
		Name:       Disorders,
		Title:      "Mental Health Database: Disorders",
		Comment:    provenance,
		BaseURI:    baseURIRoot + "/disorders",
		OutputFile: "mhdb-disorders.ttl",
		ExcludePrefixes: []string{
			"mhdb-states", "mhdb-resources", "mhdb-assessments", "mhdb-sensors",
		},
	},
	{
		Name:       Resources,
		Title:      "Mental Health Database: Resources",
		Comment:    provenance,
		BaseURI:    baseURIRoot + "/resources",
		OutputFile: "mhdb-resources.ttl",
		CrossRefs:  []Name{Sensors, Disorders, States},
		ExcludePrefixes: []string{
			"mhdb-states", "mhdb-disorders", "mhdb-assessments",
		},
	},
	{
		Name:       Assessments,
		Title:      "Mental Health Database: Assessments",
		Comment:    provenance,
		BaseURI:    baseURIRoot + "/assessments",
		OutputFile: "mhdb-assessments.ttl",
		CrossRefs:  []Name{Resources, Disorders},
		ExcludePrefixes: []string{
			"mhdb-states", "mhdb-disorders", "mhdb-resources", "mhdb-sensors",
		},
	},
	{
		Name:       Sensors,
		Title:      "Mental Health Database: Sensors",
		Comment:    provenance,
		BaseURI:    baseURIRoot + "/sensors",
		OutputFile: "mhdb-sensors.ttl",
		ExcludePrefixes: []string{
			"mhdb-states", "mhdb-disorders", "mhdb-resources", "mhdb-assessments",
		},
	},
}

// Catalog returns the descriptors in canonical run order.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the module names in canonical run order.
func Names() []Name {
	names := make([]Name, len(catalog))
	for i, d := range catalog {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the descriptor for name.
func Lookup(name Name) (Descriptor, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Parse converts a string to a module Name.
func Parse(s string) (Name, error) {
	name := Name(s)
	if _, ok := Lookup(name); !ok {
		return "", fmt.Errorf("module: unknown module %q", s)
	}
	return name, nil
}
