// Package config provides configuration types, defaults, and the YAML
// site-rule loader for webharvest.
package config
