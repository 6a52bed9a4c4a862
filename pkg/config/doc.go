/*
Package config loads rename rules files.

	            +-------------+
	            |   Config    |
	            |  (Rules)    |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |   HCL   |   |  JSON   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Keep frequently used rename rules in a file next to the data
- Preset output defaults (quiet, verbose, dry run)

🔄 Flow:
1. Find or receive a path (.renamerc.yaml, .renamerc.hcl, ...)
2. Pick a parser from the registry by file suffix
3. Decode, rejecting unknown fields
4. Validate the rules with the rule package

🔍 Example:

	# .renamerc.yaml
	defaults:
	  dry_run: true
	rules:
	  - kind: literal
	    pattern: " "
	    replacement: "_"
	    all: true
	  - kind: lower
*/
package config
