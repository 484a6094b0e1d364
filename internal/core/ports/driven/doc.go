// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - WeatherProvider: Current weather for a place name (OpenWeatherMap)
//   - NewsProvider: Top headlines for a country (NewsAPI)
//   - ConfigStore: Application configuration (TOML file or in-memory)
//
// Providers are stateless with respect to the screen: they receive a
// request and return a response. Credentials and endpoints are passed on
// every call so that a reloaded config file takes effect immediately.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
