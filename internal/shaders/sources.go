package shaders

const DotsVertex = `#version 410 core

layout(location = 0) in vec3 position;
layout(location = 1) in vec4 color;
layout(location = 2) in float size;

uniform mat4 transform;

out vec4 vColor;

void main() {
    gl_Position = transform * vec4(position, 1.0);
    gl_PointSize = size;
    vColor = color;
}
`

// DotsFragment rounds each point with a soft rim over the outer tenth of
// its radius.
const DotsFragment = `#version 410 core

in vec4 vColor;

out vec4 fragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5));
    float alpha = 1.0 - smoothstep(0.4, 0.5, dist);
    fragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`

const PlaneVertex = `#version 410 core

layout(location = 0) in vec3 position;
layout(location = 1) in vec4 color;

out vec4 vColor;

void main() {
    gl_Position = vec4(position, 1.0);
    vColor = color;
}
`

const PlaneFragment = `#version 410 core

in vec4 vColor;

out vec4 fragColor;

void main() {
    fragColor = vColor;
}
`
