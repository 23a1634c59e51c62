// Package ruleset compiles declarative rule files into schemas over
// key-value documents.
//
// A file holds named rulesets. Each lists fields and, per field, the rules to
// run in order:
//
//	rulesets:
//	  user:
//	    fields:
//	      - name: email
//	        rules: [notEmpty, email]
//	      - name: age
//	        rules: [int, {min: 18}]
//	      - name: address.city
//	        rules: [string, {length: [2, 64]}]
//
// A rule entry is a bare name or a single-key mapping from name to
// parameters. RuleNames lists the accepted names. Dotted field names descend
// into nested objects; absent keys read as null.
//
// Files are parsed with gopkg.in/yaml.v3, so JSON files load too. Loading
// fails with ErrInvalidFile for unreadable input and ErrInvalidRule for
// unknown names or bad parameters, wrapped with the ruleset and field.
//
// Documents come from DecodeDocument. Validation stops at the first failing
// rule and returns its *validator.ValidationError.
package ruleset
