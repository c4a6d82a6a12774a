// Package assets provides the stylesheets and page templates used for
// standalone HTML export.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in assets compiled in with go:embed
//	    ├── FilesystemLoader  - assets from a custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// A custom directory only needs the assets it overrides; anything missing
// is served from the embedded set.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// Asset names never contain separators or dots, and FilesystemLoader
// resolves symlinks before checking a path stays inside basePath.
package assets
