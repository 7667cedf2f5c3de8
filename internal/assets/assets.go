package assets

// defaultLoader is the package-level embedded loader used when no loader is given.
var defaultLoader = NewEmbeddedLoader()
