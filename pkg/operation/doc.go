/*
Package operation implements the rename pass for renamerc.

	+----------+     +----------+     +-----------+
	|  Runner  | --> |  Rename  | --> | RunSummary|
	| (order)  |     | (pass)   |     | (counts)  |
	+----------+     +----+-----+     +-----------+
	                      |
	          +-----------+-----------+
	          |           |           |
	      discover      apply      write-back
	     (pkg/walk)   (pkg/text)  (on change)

🎯 Purpose:
- Walks candidate files and applies the ordered replacement table
- Writes a file back only when its content actually changed
- Accumulates an explicit RunSummary instead of package counters

🔄 Flow:
1. Expand the configured patterns, filtered by exclusion rules
2. For each candidate: read, apply rules in order, compare
3. Overwrite in place on change; skip and log on failure
4. Return the considered/updated/failed counts to the caller

⚡ Error posture:
Per-file read, decode, and write errors are caught at the file
boundary, logged with the path, counted as failed, and never escalate
to a run-wide abort. There is no retry: a failing file is skipped for
that run. The pass is strictly sequential; a file is fully processed
and closed before the next one is opened.
*/
package operation
