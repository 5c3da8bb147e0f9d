// Package persist saves rendered configuration to disk through a
// host-mediated choice of destination.
//
// A Chooser plays the part of a save dialog: FixedChooser for scripted use,
// PromptChooser for terminals. Saver.Save never returns an error; the Result
// reports a cancellation, the written path or a failure message:
//
//	saver, _ := persist.NewSaver(persist.FixedChooser{Path: "config.yaml"})
//	res := saver.Save(ctx, persist.Request{Content: text})
//	if res.Error != "" {
//	    // report and keep editing
//	}
package persist
