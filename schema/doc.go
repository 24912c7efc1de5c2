// Package schema defines the record types a source stores, loaded from YAML.
//
//	version: 1
//	models:
//	  planet:
//	    attributes:
//	      name: {type: string}
//	      discoveredAt: {type: string, format: date-time}
//	    relationships:
//	      moons: {type: hasMany, model: moon, inverse: planet}
//	  moon:
//	    relationships:
//	      planet: {type: hasOne, model: planet, inverse: moons}
package schema
