// Package schema reads property schemas from files.
//
// A schema file lists the keys a properties file may contain. Three
// formats are accepted, chosen by file extension:
//
// YAML (.yaml, .yml):
//
//	keys:
//	  - name: HOME
//	    mandatory: true
//	  - name: LOGS
//	    default: /tmp
//
// HCL (.hcl):
//
//	key "HOME" {
//	  mandatory = true
//	}
//	key "LOGS" {
//	  default = "/tmp"
//	}
//
// JSON with comments and trailing commas (.json, .jsonc):
//
//	{
//	  // where everything lives
//	  "keys": [
//	    {"name": "HOME", "mandatory": true},
//	    {"name": "LOGS", "default": "/tmp"},
//	  ]
//	}
package schema
