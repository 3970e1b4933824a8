package config

var ResetCache = resetCache
