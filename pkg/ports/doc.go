/*
Package ports defines the driven ports (interfaces) for the kolam engine.

These interfaces decouple pattern generation from external implementations,
allowing the serving adapters to work with various storage backends and
letting tests substitute the generator core.

# Key Interfaces

  - PatternStore: Responsible for persisting and retrieving generated Patterns.
  - Generator: The pattern-producing core consumed by driving adapters (HTTP, MCP).
*/
package ports
