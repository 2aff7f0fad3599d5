// Package process launches collaborator commands as blocking child processes.
//
// A Launcher only starts names on its allow-list. Names are resolved the way
// the host shell would: the step's own working directory is searched first,
// then PATH. The child inherits the writers it is given; nothing is captured.
package process
