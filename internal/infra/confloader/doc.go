// Package confloader loads propkit's own settings and watches files for change.
//
// Settings come from koanf with the priority (highest to lowest):
//
//  1. Command-line flags (LoadMap / WithOverrides)
//  2. Environment variables (PROPKIT_ prefix)
//  3. The YAML settings file
//  4. Values already present in the target struct
//
// Watcher wraps fsnotify. It watches the parent directory of each file so
// editors that save by renaming are still seen, and only reports events for
// the files that were registered.
package confloader
