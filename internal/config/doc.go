// Package config loads the YAML run configuration.
//
//	version: "1"
//	sources:
//	  - kind: classpath
//	    paths: [build/classes, lib/guava.jar]
//	    ignore_missing: true
//	  - kind: manifest
//	    paths: [names.txt]
//	  - kind: packages
//	    paths: ["./..."]
//	    dir: ../service
//	workers: 4
//	skip_empty_segments: false
//	output: yaml
//	log_level: info
package config
