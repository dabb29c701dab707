// Package config defines Quire's typed configuration and its loading
// pipeline.
//
// Configuration is assembled in layers: built-in defaults, then an
// optional config file (TOML, YAML, or JSON — chosen by extension), then
// QUIRE_-prefixed environment variables. Later layers win. The result is
// an immutable Config value handed to the engine at construction.
//
// A small fsnotify-based Watcher re-loads the file layer when it changes
// on disk, for editors that want live budget tuning.
package config
