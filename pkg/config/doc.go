/*
Package config manages configuration parsing and validation for renamerc.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  HCL   | |  JSON   |
	|  Parser   | | Parser | | Parser  |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Loads the ordered replacement table, pattern set and exclusion rules
- Validates configuration values and fills in defaults
- Supports multiple config formats behind one Parser interface

🔄 Flow:
1. Reads configuration from file
2. Dispatches to a format-specific parser by extension
3. Validates values and applies defaults
4. Hands the validated config to the operation layer

📝 Design Philosophy:
The replacement table is configuration data, not code. Replacements are
kept in the exact order they appear in the file, because each rule runs
on the output of the previous one and overlapping keys must resolve the
way the author wrote them, not the way a map happens to iterate.

🔍 Example:

	cfg, err := config.Load(ctx, ".renamerc.yaml")
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
*/
package config
