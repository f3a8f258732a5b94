// Package editor provides the design-time companion to package resolver: a
// Spawner that re-does the prefab lookup for editor spawning and hooks the
// new instance into the host's undo and selection facilities. The facilities
// themselves stay external; only their contracts live here.
package editor
