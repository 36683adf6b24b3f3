package projstat

// FileTypeStat represents statistics for one file type.
type FileTypeStat struct {
	// Type is the classified type of the files.
	Type string `json:"type" yaml:"type"`
	// Size is the cumulative size in bytes.
	Size uint64 `json:"size" yaml:"size"`
	// Amount is the number of files of this type.
	Amount uint32 `json:"amount" yaml:"amount"`
	// AmountRelSum is Amount relative to the total file count.
	AmountRelSum float64 `json:"amount_rel_sum" yaml:"amount_rel_sum"`
	// AmountRelMax is Amount relative to the largest Amount.
	AmountRelMax float64 `json:"amount_rel_max" yaml:"amount_rel_max"`
	// SizeRelSum is Size relative to the total size.
	SizeRelSum float64 `json:"size_rel_sum" yaml:"size_rel_sum"`
	// SizeRelMax is Size relative to the largest Size.
	SizeRelMax float64 `json:"size_rel_max" yaml:"size_rel_max"`
}

// SourceTypeStat represents line statistics for one source type.
type SourceTypeStat struct {
	// Type is the classified type of the source files.
	Type string `json:"type" yaml:"type"`
	// Count is the cumulative number of lines.
	Count uint64 `json:"count" yaml:"count"`
	// CountRelSum is Count relative to the total number of source lines.
	CountRelSum float64 `json:"count_rel_sum" yaml:"count_rel_sum"`
	// CountRelMax is Count relative to the largest Count.
	CountRelMax float64 `json:"count_rel_max" yaml:"count_rel_max"`
}

// MainStat holds the project-wide totals.
type MainStat struct {
	// Files is the number of regular files encountered, ignored ones included.
	Files uint32 `json:"files" yaml:"files"`
	// Folders is the number of directories below the root.
	Folders uint32 `json:"folders" yaml:"folders"`
	// SourceLines is the number of lines across all source files.
	SourceLines uint64 `json:"source_lines" yaml:"source_lines"`
	// TotalSize is the cumulative size of all non-ignored files.
	TotalSize uint64 `json:"total_size" yaml:"total_size"`
	// DirName is the parent directory of the resolved root.
	DirName string `json:"dir_name" yaml:"dir_name"`
	// BaseName is the name of the resolved root.
	BaseName string `json:"base_name" yaml:"base_name"`
}

// Performance holds timing information of a scan.
type Performance struct {
	// ElapsedMicros is the wall-clock duration of the scan in microseconds.
	ElapsedMicros uint64 `json:"elapsed_micros" yaml:"elapsed_micros"`
}

// ProjectStat holds aggregate statistics for a project scan.
type ProjectStat struct {
	Main        MainStat         `json:"main" yaml:"main"`
	Performance Performance      `json:"performance" yaml:"performance"`
	Files       []FileTypeStat   `json:"files" yaml:"files"`
	Source      []SourceTypeStat `json:"source" yaml:"source"`
}

// collector accumulates statistics during a walk. fastwalk runs with a single
// worker, so callbacks never overlap and no locking is needed.
type collector struct {
	stat *ProjectStat
}

// newCollector creates a collector with empty statistics.
func newCollector(dirName, baseName string) *collector {
	return &collector{
		stat: &ProjectStat{
			Main: MainStat{
				DirName:  dirName,
				BaseName: baseName,
			},
			Files:  make([]FileTypeStat, 0),
			Source: make([]SourceTypeStat, 0),
		},
	}
}

// addFolder records a directory below the root.
func (c *collector) addFolder() {
	c.stat.Main.Folders++
}

// countFile records a regular file before it is filtered.
func (c *collector) countFile() {
	c.stat.Main.Files++
}

// addFile records a non-ignored file of the given type and size.
func (c *collector) addFile(fileType string, size uint64) {
	c.stat.Main.TotalSize += size

	for i := range c.stat.Files {
		if c.stat.Files[i].Type == fileType {
			c.stat.Files[i].Amount++
			c.stat.Files[i].Size += size

			return
		}
	}

	c.stat.Files = append(c.stat.Files, FileTypeStat{Type: fileType, Size: size, Amount: 1})
}

// addSource records the line count of a source file of the given type.
func (c *collector) addSource(fileType string, lines uint64) {
	c.stat.Main.SourceLines += lines

	for i := range c.stat.Source {
		if c.stat.Source[i].Type == fileType {
			c.stat.Source[i].Count += lines

			return
		}
	}

	c.stat.Source = append(c.stat.Source, SourceTypeStat{Type: fileType, Count: lines})
}
