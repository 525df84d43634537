/*
Package ops provides a high-level, one-call API for XEX2 header operations.

Clear the PAL-50 incompatibility bit of an image:

	res, err := ops.ClearPAL50("default.xex", nil)
	if err != nil {
	    log.Fatal(err)
	}
	if !res.Changed {
	    fmt.Println("bit already clear, nothing written")
	}

Preview without writing:

	res, err := ops.ClearPAL50("default.xex", &ops.ClearOptions{DryRun: true})

Inspect an image:

	info, err := ops.Info("default.xex")
	entries, err := ops.Entries("default.xex")
	priv, err := ops.Privileges("default.xex")

Every function opens the image, performs one operation, and releases it. The
input file is never modified unless ClearOptions.InPlace is set; by default
the patched image is written next to the input with a ".patched.xex" suffix.
*/
package ops
