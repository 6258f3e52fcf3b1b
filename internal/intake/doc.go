// Package intake turns dropped files into repository bundles.
//
// Ingest runs the full admission pipeline for one file: stage a bundle, copy
// the file in as the raw document fragment, run the extraction engine, and
// commit the bundle to the inbox. A failure anywhere deletes the staging
// bundle again so no half-built bundle leaks past staging.
//
// Watcher polls a configured intake directory and ingests every regular file
// it finds, removing the source file once the bundle is safely committed. A
// flock lock file keeps a second watcher instance from racing the first over
// the same directory.
package intake
