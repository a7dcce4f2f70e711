// Package ruleset loads validation rule definitions from YAML documents
// and registers them on a validator.
//
// A rules document is a flat list of named patterns:
//
//	rules:
//	  - name: zip
//	    pattern: '^\d{5}$'
//	    description: US ZIP code
//	  - name: sku
//	    pattern: '[A-Z]{3}-\d{4}'
//
// Load validates eagerly: every definition needs a non-empty name and a
// pattern that compiles, and a name may appear only once per document.
// The first violation fails the whole load, so a registered set never
// contains half of a broken file. Names that collide with built-in rules
// are not an error; registering them overwrites the built-in, which is how
// a team replaces the stock phone rule with a stricter one.
//
// The document is declarative configuration, read at startup. Nothing in
// this package writes files.
package ruleset
