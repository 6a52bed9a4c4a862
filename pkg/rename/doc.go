/*
Package rename implements the batch rename loop.

	+-------------+      +------------+      +-------------+
	|   Options   | ---> |  Renamer   | ---> |  Reporter   |
	| (files+mode)|      | (decide)   |      | (console)   |
	+-------------+      +-----+------+      +-------------+
	                           |
	              +------------+------------+
	              |                         |
	        +-----+------+           +------+------+
	        | pathparts  |           | FileSystem  |
	        | (split)    |           | (resolve,   |
	        +------------+           |  rename)    |
	                                 +-------------+

🔄 Flow, per input path:
 1. skip arguments whose file name component is empty
 2. resolve the entry on disk (skipped in try mode); roots cannot be renamed
 3. split the name into base and extension
 4. verbose: print the numbered "before" line
 5. run the Transform on the base; an empty result means "leave it alone"
 6. rename on disk when the name changed, unless dry-run or try mode
 7. print the "after" line according to the verbosity rules

Any error stops the loop immediately. Renames already performed stay on disk.

🔍 Example:

	r := rename.New(rename.NewOSFileSystem(), report.New(os.Stdout))
	n, err := r.Run(ctx, rename.Options{Files: args, DryRun: true}, func(base, extn string) (string, error) {
		return strings.ToUpper(base), nil
	})
*/
package rename
