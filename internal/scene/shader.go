package scene

// Lit shader: ambient, the lamp's point light (with range falloff) and spot light, plus an
// emissive term for glowing parts. Vertex attributes match raylib's generated meshes.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform vec3 pointPos;
uniform vec3 pointColor;
uniform float pointIntensity;
uniform float pointRange;
uniform vec3 spotPos;
uniform vec3 spotDir;
uniform vec3 spotColor;
uniform float spotIntensity;
uniform float spotCos;
uniform vec3 emissive;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 base = colDiffuse.rgb;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 lit = ambient * base;

  vec3 toPoint = pointPos - fragPosition;
  float d = length(toPoint);
  vec3 L = toPoint / max(d, 0.0001);
  float att = pointRange > 0.0 ? pow(clamp(1.0 - d / pointRange, 0.0, 1.0), 2.0) : 1.0;
  float NdotL = max(dot(N, L), 0.0);
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  lit += (base * NdotL + spec * step(0.0001, NdotL)) * pointColor * pointIntensity * att;

  vec3 toSpot = spotPos - fragPosition;
  vec3 S = normalize(toSpot);
  float cone = smoothstep(spotCos, mix(spotCos, 1.0, 0.2), dot(-S, spotDir));
  lit += base * spotColor * spotIntensity * cone * max(dot(N, S), 0.0) / (1.0 + dot(toSpot, toSpot));

  finalColor = vec4(lit + emissive, colDiffuse.a);
}
`
)

const (
	specularPower    = float32(48.0)
	specularStrength = float32(0.35)
)
