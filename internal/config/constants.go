package config

// Base application details
const AppName = "drift"
const ConfigDirName = "drift"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "drift.log"

// UI Layout
const StatusBarHeight = 1

// Editor defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultSystemClipboard = true
const DefaultMaxHistory = 100

// Files at or above this size are loaded through the memory-mapped path.
const DefaultLargeFileThreshold = 1 << 20
