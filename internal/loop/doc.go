// Package loop runs the single-threaded control loop that owns the
// application state.
//
// # Iteration
//
// Driver.Run repeats one fixed sequence:
//
//  1. drain the inbox and apply every message
//  2. draw the view for the current screen
//  3. stop if the user quit or the context is done
//  4. wait for at most one key, never past the next spinner tick
//  5. launch the job the key produced, if any
//  6. advance the spinner when its tick is due
//
// # Ownership
//
// Only the Run goroutine touches state.App. Input, Renderer and Launcher are
// interfaces so tests can drive the loop with fakes and no terminal.
//
// # Shutdown
//
// Run closes the inbox on return. Jobs still running then drop their
// messages instead of blocking on a consumer that has left.
package loop
