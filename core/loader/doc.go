// Package loader mounts feature modules on the Fiber app.
//
// A feature implements Feature (Name, IsEnabled, Load). The start command
// registers each one with a Manager, and LoadAll mounts the enabled ones in
// registration order, stopping at the first error. The remnant analyzer is
// the only feature today.
package loader
