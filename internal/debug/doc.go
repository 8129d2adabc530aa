// Package debug is the engine's trace log for arrangement passes and tree
// surgery.
//
// Set SCENE_DEBUG to a file path (or call Init) to append timestamped lines
// to that file. With neither, Log does nothing.
package debug
